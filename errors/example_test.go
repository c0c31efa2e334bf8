package errors_test

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/scriptfile/errors"
)

func ExampleClassify() {
	err := errors.WithOp(fs.ErrNotExist, "open", "settings.ini")

	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.IsRetryable(err))
	// Output:
	// NOT_FOUND
	// false
}

func ExampleWithClassification() {
	err := errors.New(errors.CodeLocked, "file is locked")
	fmt.Println(errors.IsRetryable(err))

	err = errors.WithClassification(err, errors.ClassificationPermanent)
	fmt.Println(errors.IsRetryable(err))
	// Output:
	// true
	// false
}
