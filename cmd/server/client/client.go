// Package client provides commands that call the wardrobe gRPC service
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-apparel/internal/errors"
	"github.com/KirkDiggler/rpg-apparel/internal/handlers/wardrobe/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	characterID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the wardrobe service",
	Long:  `Client commands make real gRPC requests against a running wardrobe server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&characterID, "character", "", "Character ID")

	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(dequipCmd)
	ClientCmd.AddCommand(listCatalogCmd)
}

// createClient creates a wardrobe client and its cleanup func
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// invoke sends one request and prints the response as JSON
func invoke(out io.Writer, method string, fields map[string]any) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, errors.FromGRPCError(err))
	}

	return printResponse(out, resp)
}

func printResponse(out io.Writer, resp *structpb.Struct) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
