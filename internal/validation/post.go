package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/templui/postpage/internal/model"
)

var (
	ErrInvalidPostID  = errors.New("invalid post id")
	ErrIncompletePost = errors.New("incomplete post")
)

// decimalPattern matches base-10 integer and float literals with an optional
// sign and exponent ("42", "-5", "3.2", ".5", "1e3"), and signed infinity.
// Hex, binary and octal literals are not base-10 and do not match.
var decimalPattern = regexp.MustCompile(`^[+-]?((\d+\.?\d*|\.\d+)([eE][+-]?\d+)?|Infinity)$`)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidatePostID checks that a route identifier is present and numeric.
// Surrounding whitespace is ignored and a blank value reads as zero.
// Sign and range are not checked: whether a post exists for the value is up to the source.
func ValidatePostID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPostID)
	}

	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil
	}

	if !decimalPattern.MatchString(trimmed) {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidPostID, id)
	}

	return nil
}

// ValidatePost rejects partially populated records.
// A source either returns a complete post or none at all.
func ValidatePost(post *model.Post) error {
	if post == nil {
		return fmt.Errorf("%w: nil", ErrIncompletePost)
	}

	err := validate.Struct(post)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return fmt.Errorf("%w: missing %s", ErrIncompletePost, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrIncompletePost, err)
	}

	return nil
}
