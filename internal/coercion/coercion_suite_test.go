package coercion_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCoercion(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Coercion Suite")
}
