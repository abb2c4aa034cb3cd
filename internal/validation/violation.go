package validation

import (
	"fmt"

	language "github.com/hanpama/schemaext/internal/language"
)

type Violation struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func (v *Violation) String() string {
	if v.File == "" {
		return v.Message
	}
	return fmt.Sprintf("%s %s:%d:%d", v.Message, v.File, v.Line, v.Column)
}

type ValidationError []*Violation

func (e ValidationError) Error() string {
	msg := "violations found:\n"
	for _, v := range e {
		msg += "- " + v.String() + "\n"
	}
	return msg
}

// Core primitive used by all template helpers.
func violationWithPosition(message string, pos *language.Position) *Violation {
	v := &Violation{Message: message}
	if pos == nil {
		return v
	}
	if pos.Src != nil {
		v.File = pos.Src.Name
	}
	v.Line = pos.Line
	v.Column = pos.Column
	return v
}
