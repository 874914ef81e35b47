// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/solidcoredata/avrorecord/internal/start"
	"github.com/solidcoredata/avrorecord/record"
	svcconfig "github.com/solidcoredata/avrorecord/service/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var propertiesPath string

	root := &cobra.Command{
		Use:   "avrorecordctl",
		Short: "Inspect and convert Avro-encoded record data",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&propertiesPath, "properties", "", "path to a JSON column-properties file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newDecodeCmd(&propertiesPath))
	root.AddCommand(newEncodeCmd(&propertiesPath))
	root.AddCommand(newSchemaCmd(&propertiesPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the config-reload loop until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			reload := func() {
				if err := svcconfig.Run(context.Background(), *configPath); err != nil {
					log.Print(err)
				}
			}
			reload()
			return start.Start(context.Background(), 5*time.Second, func(ctx context.Context) error {
				return start.RunAll(ctx, func(ctx context.Context) error {
					<-ctx.Done()
					return nil
				})
			}, reload)
		},
	}
}

func newDecodeCmd(propertiesPath *string) *cobra.Command {
	var typeSchemaPath string
	var label string

	cmd := &cobra.Command{
		Use:   "decode <data-file>",
		Short: "Decode Avro-encoded record data and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := loadType(label, typeSchemaPath, *propertiesPath)
			if err != nil {
				return err
			}
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			rec, err := record.DecodeBytes(typ, buf)
			if err != nil {
				return err
			}
			return printRecord(cmd.OutOrStdout(), typ, rec)
		},
	}
	cmd.Flags().StringVar(&typeSchemaPath, "type-schema", "", "path to a JSON Avro type schema file (required)")
	cmd.Flags().StringVar(&label, "label", "", "informational type label")
	cmd.MarkFlagRequired("type-schema")
	return cmd
}

func newEncodeCmd(propertiesPath *string) *cobra.Command {
	var typeSchemaPath string
	var label string

	cmd := &cobra.Command{
		Use:   "encode <values-file>",
		Short: "Encode a JSON object of column values into Avro-encoded record data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := loadType(label, typeSchemaPath, *propertiesPath)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var values map[string]interface{}
			if err := json.NewDecoder(f).Decode(&values); err != nil {
				return fmt.Errorf("decode values: %w", err)
			}

			rec := record.NewRecord(typ)
			for i := 0; i < typ.Len(); i++ {
				col := typ.Column(i)
				if err := rec.Set(i, values[col.Name]); err != nil {
					return err
				}
			}
			buf, err := rec.EncodeBytes()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(buf)
			return err
		},
	}
	cmd.Flags().StringVar(&typeSchemaPath, "type-schema", "", "path to a JSON Avro type schema file (required)")
	cmd.Flags().StringVar(&label, "label", "", "informational type label")
	cmd.MarkFlagRequired("type-schema")
	return cmd
}

func newSchemaCmd(propertiesPath *string) *cobra.Command {
	var typeSchemaPath string
	var label string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Parse a type schema and print its reconstructed form",
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := loadType(label, typeSchemaPath, *propertiesPath)
			if err != nil {
				return err
			}
			schemaJSON, properties, err := typ.ToTypeSchema()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"type_schema": json.RawMessage(schemaJSON),
				"properties":  properties,
			})
		},
	}
	cmd.Flags().StringVar(&typeSchemaPath, "type-schema", "", "path to a JSON Avro type schema file (required)")
	cmd.Flags().StringVar(&label, "label", "", "informational type label")
	cmd.MarkFlagRequired("type-schema")
	return cmd
}

func loadType(label, typeSchemaPath, propertiesPath string) (*record.Type, error) {
	schemaBytes, err := os.ReadFile(typeSchemaPath)
	if err != nil {
		return nil, err
	}
	properties := map[string][]string{}
	if propertiesPath != "" {
		b, err := os.ReadFile(propertiesPath)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, &properties); err != nil {
			return nil, fmt.Errorf("decode properties: %w", err)
		}
	}
	return record.FromTypeSchema(label, string(schemaBytes), properties)
}

func printRecord(w io.Writer, typ *record.Type, rec *record.Record) error {
	values := make(map[string]interface{}, typ.Len())
	for i := 0; i < typ.Len(); i++ {
		v, err := rec.Get(i)
		if err != nil {
			return err
		}
		values[typ.Column(i).Name] = v
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(values)
}
