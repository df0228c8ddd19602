package cli

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
)

func requireLoadedProjects(list *model.ProjectList) error {
	if list.Failed() {
		return goerr.Wrap(types.ErrFetchFailed, list.Message)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON output")
	}
	return nil
}
