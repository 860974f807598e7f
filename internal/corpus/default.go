// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/typestream/pkg/types"
)

//go:embed english.json
var englishJSON []byte

// Default returns the built-in English word list used when no words file
// is configured.
func Default() types.WordData {
	var wd types.WordData
	if err := json.Unmarshal(englishJSON, &wd); err != nil {
		panic(fmt.Sprintf("corpus: embedded english.json is invalid: %v", err))
	}
	return wd
}
