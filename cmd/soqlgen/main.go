package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Konsultn-Engineering/soql/cmd/soqlgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
