package extrema_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestExtrema(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Extrema Suite")
}
