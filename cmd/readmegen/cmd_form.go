package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"readme-generator/internal/domain"
	"readme-generator/internal/form"
	"readme-generator/internal/ui"
	"readme-generator/internal/usecase"
	infra "readme-generator/pkg/infrastructure"
)

var (
	formOut     string
	formPreview bool
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in the profile form interactively and write README.md",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := form.NewAnswers()
		if err := form.Build(answers).RunWithContext(cmd.Context()); err != nil {
			return err
		}

		session := newSession()
		form.Apply(session, answers)
		// the form has no live preview, so give enrichment a chance to land
		session.Close()

		return generate(cmd.Context(), session, formOut, formPreview)
	},
}

func init() {
	formCmd.Flags().StringVarP(&formOut, "out", "o", "", "output directory (default from config)")
	formCmd.Flags().BoolVar(&formPreview, "preview", false, "render the README in the terminal after writing it")
}

// generate writes the README through a FileSink, optionally echoing a
// rendered preview.
func generate(ctx context.Context, session *usecase.Session, out string, preview bool) error {
	if out == "" {
		out = cfg.OutputDir
	}
	files := infra.NewFileSink(out)

	var written domain.Document
	sink := usecase.SinkFunc(func(ctx context.Context, doc domain.Document) error {
		if err := files.Deliver(ctx, doc); err != nil {
			return err
		}
		written = doc
		return nil
	})

	ok, err := session.Generate(ctx, sink)
	if err != nil {
		return err
	}
	if !ok {
		return usecase.ErrNotReady
	}

	fmt.Println(ui.Green.Render("wrote"), ui.Cyan.Render(files.Written))

	if preview {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		rendered, err := r.Render(string(written.Body))
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		fmt.Print(rendered)
	}
	return nil
}
