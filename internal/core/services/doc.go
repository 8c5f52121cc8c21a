// Package services implements the driving port interfaces.
// Services contain the core business logic: the watch dispatcher that
// filters and schedules detected files, and the sync pipeline that
// turns one file into a remote page.
//
// Services are pure Go with no CGO or external dependencies.
package services
