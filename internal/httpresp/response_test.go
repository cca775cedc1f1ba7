package httpresp

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestListNeverNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	List[string](c, nil)

	if got := w.Body.String(); got != `{"data":[],"total":0}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Page(c, []int{1, 2}, 10, 3, 2)

	if got := w.Body.String(); got != `{"data":[1,2],"total":10,"page":3,"limit":2}` {
		t.Fatalf("unexpected body %s", got)
	}
}
