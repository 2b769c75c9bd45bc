package utils

import (
	"bytes"
	"mime"
	"strings"

	"hotelinfo/errors"
	"hotelinfo/validator"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/goccy/go-json"
)

const (
	ContentTypeJSONPatch  = "application/json-patch+json"
	ContentTypeMergePatch = "application/merge-patch+json"
)

// ApplyPatch applies patchDoc to the JSON form of current and decodes the result
// into dst, then validates dst. Merge patches (RFC 7396) are used when
// contentType says so; anything else is read as a JSON Patch (RFC 6902).
// Patches that touch unknown fields or leave dst invalid are rejected.
func ApplyPatch(current interface{}, patchDoc []byte, contentType string, dst interface{}) error {
	if len(bytes.TrimSpace(patchDoc)) == 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPatch, "Patch document is empty", nil)
	}

	original, err := json.Marshal(current)
	if err != nil {
		return err
	}

	var patched []byte
	if isMergePatch(contentType) {
		patched, err = jsonpatch.MergePatch(original, patchDoc)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidPatch, "Invalid merge patch document", err)
		}
	} else {
		patch, err := jsonpatch.DecodePatch(patchDoc)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidPatch, "Invalid JSON patch document", err)
		}
		patched, err = patch.Apply(original)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidPatch, "JSON patch could not be applied", err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPatch, "Patched document does not match the resource", err)
	}
	return validator.ValidateStruct(dst)
}

func isMergePatch(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(contentType)
	}
	return strings.EqualFold(mediaType, ContentTypeMergePatch)
}
