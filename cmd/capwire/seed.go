// Seed command: write a person blob into the configured backend.
package main

import (
	"github.com/sghaida/capwire/examples"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <id> <name> [like...]",
	Short: "Store a person under an identity",
	Long: `Seed encodes a person and writes the blob the querier will later
read for <id>. Extra arguments become the person's likes.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSeed,
}

func runSeed(_ *cobra.Command, args []string) error {
	id := args[0]
	p := examples.Person{FullName: args[1], Likes: args[2:]}

	if err := app.blobs.WriteBlob(personKey(id), examples.EncodePerson(p)); err != nil {
		return err
	}
	if cfg.Backend == backendMemory {
		logger.Warn().Msg("memory backend does not outlive the process; the seed is gone on exit")
	}
	logger.Info().Str("id", id).Str("backend", cfg.Backend).Msg("seeded")
	return nil
}
