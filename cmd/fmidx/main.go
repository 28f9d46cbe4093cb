package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is seperated from application so the App can be exercised by tests
// without an os.Exit call ever firing.
func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	err := app.Run(args)
	if err != nil {
		// cli.HandleExitCoder honors an explicit exit code set via
		// cli.Exit (2 for InvalidInput, 1 for I/O errors); anything else
		// falls through to the default fatal exit 1.
		cli.HandleExitCoder(err)
		log.Fatal(err)
	}
}
