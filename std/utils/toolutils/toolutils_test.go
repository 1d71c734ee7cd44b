package toolutils_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/utils/toolutils"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestDecodeYaml(t *testing.T) {
	var s sample
	require.NoError(t, toolutils.DecodeYaml(&s, strings.NewReader("name: a\ncount: 3\n")))
	require.Equal(t, sample{Name: "a", Count: 3}, s)

	// unknown fields are rejected
	require.Error(t, toolutils.DecodeYaml(&s, strings.NewReader("name: a\nextra: 1\n")))
}

func TestStatusPrinter(t *testing.T) {
	var b bytes.Buffer
	p := toolutils.StatusPrinter{File: &b, Padding: 6}
	p.Print("host", "example.com")
	p.PrintIf("port", 80, false)
	p.Print("fragment", "x")
	require.Equal(t, "  host=example.com\nfragment=x\n", b.String())
}
