package cli

import (
	"os"
	"testing"

	"github.com/nathoo/crawlcore/locale"
)

func TestMain(m *testing.M) {
	if err := locale.Load(locale.DefaultLanguage); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
