package spacing

import (
	"os"
	"example.com/ext" // want `Missed spacing between "os" and "example.com/ext"\.`
)

func env() string {
	return os.Getenv(ext.Name())
}
