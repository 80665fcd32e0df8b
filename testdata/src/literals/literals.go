package literals

import "strconv"

type server struct {
	Name string
	Port int
	Addr string
}

var ports = map[string]int{
	"https": 443,
	"http":  80, // want `Expected "http" to come before "https"\.`
}

var api = server{
	Port: 8080,
	Name: "api", // want `Expected "Name" to come before "Port"\.`
}

var pinned = server{
	Port: 9090, //sortful:disable-line
	Name: "pinned",
}

var single = server{Port: 1, Name: "single"} // want `Expected "Name" to come before "Port"\.`

var computed = server{
	Name: "computed",
	Port: 1,

	Addr: ":" + strconv.Itoa(1),
}
