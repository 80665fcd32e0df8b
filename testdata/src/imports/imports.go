package imports

import (
	"strings"
	"fmt" // want `Expected "fmt" to come before "strings"\.`
)

func upper(v any) string {
	return strings.ToUpper(fmt.Sprint(v))
}
