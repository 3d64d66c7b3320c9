package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/grkuntzmd/microqr"
	"github.com/grkuntzmd/microqr/internal/config"
	"github.com/grkuntzmd/microqr/internal/render"
)

var eclFlagValues = map[string]microqr.ECL{
	"x": microqr.NONE,
	"l": microqr.L,
	"m": microqr.M,
	"q": microqr.Q,
}

var (
	eclFlag      string
	encodingFlag string
	outFlag      string
	showFlag     bool
	ansiFlag     bool
	debugFlag    bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode TEXT",
	Short: "Encode TEXT into a Micro QR Code symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&eclFlag, "ecl", "e", "", "required error correction level (x, l, m, q)")
	encodeCmd.Flags().StringVar(&encodingFlag, "encoding", "", "byte-mode text encoding")
	encodeCmd.Flags().StringVarP(&outFlag, "out", "o", "", "path to save the PNG image")
	encodeCmd.Flags().BoolVarP(&showFlag, "show", "s", false, "open the image in the default viewer")
	encodeCmd.Flags().BoolVar(&ansiFlag, "ansi", false, "print the symbol to the terminal instead of saving a file")
	encodeCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false, "show debug logging")
}

// parseLogLevel maps a config log-level name to an slog.Level, defaulting to
// Warn for an empty or unrecognized name.
func parseLogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	text := args[0]

	cfg, err := config.Load("microqr.yaml")
	if err != nil {
		return err
	}

	level := parseLogLevel(cfg.LogLevel)
	if debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ecl := cfg.ECL
	if eclFlag != "" {
		ecl = eclFlag
	}
	eclPreference, ok := eclFlagValues[ecl]
	if !ok {
		return fmt.Errorf("unrecognized ecl %q", ecl)
	}

	encName := cfg.ByteEncoding
	if encodingFlag != "" {
		encName = encodingFlag
	}

	logger.Debug("encoding request", "ecl", ecl, "encoding", encName, "text", text)

	matrix, err := microqr.Encode(text, eclPreference,
		microqr.WithByteEncoding(encName),
		microqr.WithLogger(logger),
	)
	if err != nil {
		switch e := err.(type) {
		case *microqr.InvalidCharacterError:
			fmt.Fprintf(os.Stderr, "invalid character : %c\n", e.Char)
		case *microqr.InvalidPairError:
			fmt.Fprintln(os.Stderr, "invalid pair")
		case *microqr.OverCapacityError:
			fmt.Fprintln(os.Stderr, "over capacity")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if ansiFlag {
		fmt.Print(render.ToANSI(matrix))
		return nil
	}

	path := outFlag
	if path == "" {
		path = filepath.Join(cfg.OutputDir, fmt.Sprintf("%s.png", text))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render.ToPNG(f, matrix, 8); err != nil {
		return err
	}
	logger.Info("image saved", "path", path)

	if showFlag {
		return browser.OpenFile(path)
	}
	return nil
}
