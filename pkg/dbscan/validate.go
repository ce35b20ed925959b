package dbscan

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput возвращается, если входные данные вне области определения:
// нечисловые координаты, NaN в epsilon или отрицательный minPts.
// epsilon <= 0, minPts == 0 и пустой набор ошибкой не считаются.
var ErrInvalidInput = errors.New("dbscan: invalid input")

type input struct {
	Points    []Point `validate:"dive"`
	Epsilon   float64 `validate:"notnan"`
	MinPoints int     `validate:"min=0"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// ошибки регистрации тут возможны только при пустом теге
		_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})
		_ = validate.RegisterValidation("notnan", func(fl validator.FieldLevel) bool {
			return !math.IsNaN(fl.Field().Float())
		})
	})
	return validate
}

func validateInput(points []Point, epsilon float64, minPts int) error {
	err := getValidator().Struct(input{Points: points, Epsilon: epsilon, MinPoints: minPts})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s must satisfy %q, got %v",
			ErrInvalidInput, strings.TrimPrefix(fe.Namespace(), "input."), fe.Tag(), fe.Value())
	}

	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
