// telemetryctl records analytics sessions and events from the shell.
//
//	export TELEMETRY_API_KEY=dev
//	telemetryctl start
//	telemetryctl event Login -p user=alice
//	telemetryctl end
//	telemetryctl dump --format yaml
package main

import "github.com/hupe1980/telemetry/internal/cli"

func main() {
	cli.Execute()
}
