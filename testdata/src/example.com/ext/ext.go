package ext

func Name() string {
	return "ext"
}
