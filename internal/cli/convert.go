// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/pion/gid"
	"github.com/pion/gid/base62"
	"github.com/spf13/cobra"
)

func newEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [HEX...]",
		Short: "Encode 32 character hex identifiers as base62",
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, base62.FromHex)
		},
	}
}

func newDecodeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [BASE62...]",
		Short: "Decode 22 character base62 identifiers to hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, func(s string) (string, error) {
				hex, err := base62.ToHex(s)
				if err != nil {
					return "", err
				}
				if a.cfg.Upper {
					hex = strings.ToUpper(hex)
				}

				return hex, nil
			})
		},
	}
	cmd.Flags().Bool("upper", false, "print uppercase hex")

	return cmd
}

func newConvertCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [ID...]",
		Short: "Convert identifiers to the other text form",
		Long:  "convert prints the hex form of 22 character base62 identifiers and the base62 form of 32 character hex identifiers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return each(cmd, args, func(s string) (string, error) {
				id, err := gid.Parse(s)
				if err != nil {
					return "", err
				}
				if len(s) == 2*id.Len() {
					return gid.EncodeBase62(id), nil
				}
				if a.cfg.Upper {
					return id.HexUpper(), nil
				}

				return id.Hex(), nil
			})
		},
	}
	cmd.Flags().Bool("upper", false, "print uppercase hex")

	return cmd
}
