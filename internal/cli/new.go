// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/pion/gid"
	"github.com/pion/gid/base16"
	"github.com/spf13/cobra"
)

var errUnknownKind = errors.New("unknown identifier kind")

// textID is the part of a GID the new command prints.
type textID interface {
	Hex() string
	HexUpper() string
	MarshalText() ([]byte, error)
}

func newNewCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			next, err := a.generator()
			if err != nil {
				return err
			}

			for i := 0; i < a.cfg.New.Count; i++ {
				id, err := next()
				if err != nil {
					return err
				}

				out, err := a.format(id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			return nil
		},
	}

	cmd.Flags().String("kind", "random", "random, sortable, uuid4, uuid7, snowflake or derive")
	cmd.Flags().Int("count", 1, "number of identifiers, 1 for derive")
	cmd.Flags().String("format", "base62", "base62 or hex")
	cmd.Flags().Int64("node", 0, "snowflake node, 0 to 1023")
	cmd.Flags().String("key", "", "hex encoded key for derive")
	cmd.Flags().String("name", "", "name for derive")
	cmd.Flags().Bool("upper", false, "print uppercase hex")

	return cmd
}

// generator returns a function producing identifiers of the configured kind.
func (a *app) generator() (func() (textID, error), error) {
	cfg := a.cfg.New
	a.log.Debugf("Generating %d %s identifiers", cfg.Count, cfg.Kind)

	switch cfg.Kind {
	case "random":
		return func() (textID, error) { return gid.Random[[16]byte, gid.Untagged]() }, nil
	case "uuid4":
		return func() (textID, error) { return gid.NewUUIDv4[gid.Untagged]() }, nil
	case "uuid7":
		return func() (textID, error) { return gid.NewUUIDv7[gid.Untagged]() }, nil
	case "sortable":
		g := gid.NewGenerator[gid.Untagged](gid.GeneratorConfig{LoggerFactory: a.loggerFactory})

		return func() (textID, error) { return g.Next(), nil }, nil
	case "snowflake":
		node, err := gid.NewSnowflakeNode[gid.Untagged](cfg.Node)
		if err != nil {
			return nil, err
		}
		if cfg.Format == "base62" {
			a.log.Warn("Snowflake identifiers are 8 bytes, printing hex")
		}

		return func() (textID, error) { return node.Next(), nil }, nil
	case "derive":
		key, err := base16.DecodeString(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid key: %w", err)
		}
		id, err := gid.Derive[gid.Untagged](key, cfg.Name)
		if err != nil {
			return nil, err
		}

		return func() (textID, error) { return id, nil }, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownKind, cfg.Kind)
	}
}

func (a *app) format(id textID) (string, error) {
	switch {
	case a.cfg.New.Format == "base62":
		// base62 for 16 byte identifiers, hex for other widths
		text, err := id.MarshalText()

		return string(text), err
	case a.cfg.Upper:
		return id.HexUpper(), nil
	default:
		return id.Hex(), nil
	}
}
