package runlog

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// IDPrefix is prepended to every run ID.
const IDPrefix = "run-"

// idAlphabet is the character set for the random portion of run IDs.
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// idLength is the number of random characters in a run ID.
const idLength = 10

// GenerateID returns a new unique run ID such as "run-k3j9x0a2bq".
func GenerateID() (string, error) {
	id, err := nanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", fmt.Errorf("generating run ID: %w", err)
	}
	return IDPrefix + id, nil
}
