//go:build freestanding

package datetime

// Built with -tags freestanding, this file deliberately provides no Now
// function: the freestanding build has no host wall clock to read. Every
// other constructor in this package (NewTimePoint, NewSubsecondTimePoint,
// FromWeekAndSecondOfWeek, ...) takes its instant as an explicit argument
// and has no dependency on this build tag.
