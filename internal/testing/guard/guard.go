package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("PULSEFIT_TEST_MODE") == "" {
			_ = os.Setenv("PULSEFIT_TEST_MODE", "1")
		}
	})
}
