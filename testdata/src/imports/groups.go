package imports

import (
	"example.com/ext"

	"os" // want `Expected "os" to come before "example.com/ext" \(group order\)\.`
)

func env() string {
	return os.Getenv(ext.Name())
}
