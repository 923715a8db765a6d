package training

import "time"

// SetTimeFuncForTest overrides the service's clock. It lives in an in-package
// test file so external tests can reach the unexported timeFunc field.
func SetTimeFuncForTest(s TrainingService, f func() time.Time) {
	s.(*trainingServiceImpl).timeFunc = f
}
