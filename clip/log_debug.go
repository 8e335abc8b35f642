//go:build debug

package clip

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[clip DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
