package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// FunnelUUID derives the stable identifier for a funnel within a project.
func FunnelUUID(projectID, slug string) uuid.UUID {
	return UUID("go-funnel:funnel:" + strings.TrimSpace(projectID) + ":" + strings.ToLower(strings.TrimSpace(slug)))
}

// BlockDefinitionUUID derives the stable identifier for a registered block definition.
func BlockDefinitionUUID(name string) uuid.UUID {
	return UUID("go-funnel:block_definition:" + strings.ToLower(strings.TrimSpace(name)))
}

// VerticalTemplateUUID derives the stable identifier for a vertical page template.
func VerticalTemplateUUID(vertical string) uuid.UUID {
	return UUID("go-funnel:vertical_template:" + strings.ToLower(strings.TrimSpace(vertical)))
}
