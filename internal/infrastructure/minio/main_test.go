package minio

import (
	"os"
	"testing"

	"github.com/dezh-tech/immortal/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitGlobalLogger(&logger.Config{})

	os.Exit(m.Run())
}
