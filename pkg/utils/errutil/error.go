package errutil

import (
	"github.com/sirupsen/logrus"
)

// Check the supplied error, log and exit if non-nil.
func Check(err error) {
	if err != nil {
		logrus.Debugf("%+v", err)
		logrus.Fatalf("%v", err)
	}
}

// CheckWithContext works like Check, but prefixes the message with what was being done.
func CheckWithContext(err error, context string) {
	if err == nil {
		return
	}
	logrus.Debugf("%s: %+v", context, err)
	logrus.Fatalf("%s: %v", context, err)
}
