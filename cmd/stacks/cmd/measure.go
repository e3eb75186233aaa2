package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "measure",
		Short: "Print the size a scene needs",
		Long: `Measure a scene's root against the scene proposal and print the size.

Proposal dimensions omitted from the scene are unspecified, so the root
reports its natural size along them.`,
		Usage: "stacks measure <scene>",
		Run:   runMeasure,
	})
}

func runMeasure(args []string) error {
	path, _, err := parseArgs(args, flagSpec{}, "stacks measure <scene>")
	if err != nil {
		return err
	}

	s, _, err := loadScene(path)
	if err != nil {
		return err
	}

	res, err := s.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %s for proposal %s\n", res.Title, res.Size, s.ProposedSize())
	return nil
}
