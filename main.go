package main

import "github.com/EO-DataHub/zoom-webinar-services/cmd"

func main() {
	cmd.Execute()
}
