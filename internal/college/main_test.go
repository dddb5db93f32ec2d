package college_test

import (
	"os"
	"testing"

	"freshbit/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}
