package audiblebooks

import "fmt"

// These constants follow the semantic versioning 2.0.0 spec (http://semver.org/).
const (
	major uint = 0
	minor uint = 3
	patch uint = 1
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
