package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-dash/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("title", "is required")
	ve.AddFieldErrorf("base_xp", "must be at least %d", 0)

	s.True(ve.HasErrors())
	s.Equal("validation failed: base_xp: must be at least 0; title: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", "   ", vb)
	errors.ValidateMin("base_xp", -5, 0, vb)
	errors.ValidateEnum("type", "EPIC", []string{"PRIMARY", "SECONDARY"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "title: is required")
	s.Contains(err.Error(), "base_xp: must be at least 0")
	s.Contains(err.Error(), "type: must be one of: PRIMARY, SECONDARY")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", "Slay the dragon", vb)
	errors.ValidateMin("base_xp", 50, 0, vb)
	s.NoError(vb.Build())
}
