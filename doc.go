// Package weblog provides request logging for fiber applications together
// with a small leveled logger usable outside the request lifecycle.
//
// Key features
//   - Fiber middleware that times each request and classifies the response
//     status into a console color and log level
//   - Leveled API (Debug, Info, Warning, Error, Critical) with a
//     configurable [level]/[time] prefix template
//   - Colorized console lines and plain-text daily log files
//     (YYYY-MM-DD.log), rotated lazily on date change
//   - Local recovery on file-open failure: the instance stays usable with
//     console output only
//
// Typical usage
//
//	svc := weblog.New(weblog.Config{Output: true, OutputLevel: "INFO"})
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	app := fiber.New()
//	app.Use(weblog.RequestLogger(svc))
//
//	svc.Info("listening on", addr)
package weblog
