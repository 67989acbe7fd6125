// Package catalog bundles the static problem set served when the database is
// unavailable, so the problems endpoint keeps uniform behaviour either way.
package catalog

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
)

//go:embed problems.json
var problemsJSON []byte

var (
	loadOnce sync.Once
	problems []dto.ProblemResponse
	loadErr  error
)

// Problems returns the bundled problem set. The slice is shared; callers must
// not mutate it.
func Problems() ([]dto.ProblemResponse, error) {
	loadOnce.Do(func() {
		loadErr = json.Unmarshal(problemsJSON, &problems)
	})
	return problems, loadErr
}
