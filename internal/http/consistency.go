package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hkawai/cardfeature/internal/consistency"
)

// ConsistencyChecker produces the override-vs-rule diagnostic reports.
type ConsistencyChecker interface {
	Check() ([]consistency.Report, error)
}

type ConsistencyController struct {
	checker ConsistencyChecker
}

func NewConsistencyController(checker ConsistencyChecker) *ConsistencyController {
	return &ConsistencyController{checker: checker}
}

// CheckConsistency compares rule-derived bits against override bits
// GET /api/check-consistency
func (cc *ConsistencyController) CheckConsistency(c *gin.Context) {
	reports, err := cc.checker.Check()
	if err != nil {
		respondInternalError(c, err, "check consistency")
		return
	}
	c.JSON(http.StatusOK, reports)
}
