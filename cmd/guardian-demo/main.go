// Command guardian-demo walks through the sample domains and prints which
// guard clauses accepted or rejected each input.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/guardian/pkg/logger"
)

func main() {
	log := logger.New(logger.WithDevelopment("guardian-demo"), logger.WithOutput(os.Stderr))

	if failed := run(os.Stdout); failed > 0 {
		log.Error("demo finished with unexpected results", slog.Int("failed", failed))
		os.Exit(1)
	}
}

// run executes every scenario and returns the number of unexpected results.
func run(w io.Writer) int {
	d := &demo{w: w}
	d.printf("Guardian samples\n================\n\n")

	productScenario(d)
	orderScenario(d)
	registrationScenario(d)
	bankScenario(d)

	if d.failed == 0 {
		d.printf("All samples completed successfully!\n")
	}
	return d.failed
}
