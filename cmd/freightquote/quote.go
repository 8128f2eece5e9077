package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freightquote/internal/pipeline"
)

var (
	quoteReplyPath string
	quoteID        string
	quoteSender    string
	quoteJSON      bool
	quoteXLSX      bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote <request-file>",
	Short: "Price one request",
	Long: `Price one request. The request file is a raw .eml message or plain text;
--reply points at the extraction model's JSON reply for it.

Prints the quote table and price footer, or the clarification draft when
required fields are missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteReplyPath, "reply", "r", "", "extraction reply JSON file [REQUIRED]")
	quoteCmd.Flags().StringVar(&quoteID, "id", "", "request id (default: request file name)")
	quoteCmd.Flags().StringVar(&quoteSender, "sender", "", "sender address, overrides the From header")
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "print the full outcome as JSON")
	quoteCmd.Flags().BoolVar(&quoteXLSX, "xlsx", false, "write the quote workbook to OUTPUT_DIR")
	_ = quoteCmd.MarkFlagRequired("reply")
}

func runQuote(cmd *cobra.Command, args []string) error {
	req, err := loadRequest(args[0])
	if err != nil {
		return err
	}
	reply, err := os.ReadFile(quoteReplyPath)
	if err != nil {
		return fmt.Errorf("read reply: %w", err)
	}
	req.Reply = string(reply)

	out, err := pipeline.NewProcessor(sheet, log).Process(cmd.Context(), req)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if quoteJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else if out.Status == pipeline.StatusQuoted {
		fmt.Fprintln(w, out.Table)
		fmt.Fprintln(w)
		fmt.Fprintln(w, out.Footer)
	} else {
		fmt.Fprintln(w, out.Clarification)
	}

	if quoteXLSX && out.Status == pipeline.StatusQuoted {
		path := filepath.Join(cfg.OutputDir, out.ID+".xlsx")
		if err := pipeline.ExportQuoteXLSX(out, path); err != nil {
			return err
		}
		log.Info("quote exported", zap.String("path", path), zap.String("fingerprint", out.Fingerprint))
	}
	return nil
}

func loadRequest(path string) (pipeline.Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Request{}, fmt.Errorf("read request: %w", err)
	}
	req := pipeline.Request{
		ID:      quoteID,
		Sender:  quoteSender,
		RawText: string(raw),
	}
	if req.ID == "" {
		req.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if strings.EqualFold(filepath.Ext(path), ".eml") {
		email, err := pipeline.ParseEmail(raw)
		if err != nil {
			return pipeline.Request{}, fmt.Errorf("parse email: %w", err)
		}
		req.RawText = strings.TrimSpace(email.Subject + "\n" + email.Body)
		if req.Sender == "" {
			req.Sender = email.Sender
		}
		log.Debug("email parsed",
			zap.String("subject", email.Subject),
			zap.Strings("attachments", email.Attachments))
	}
	return req, nil
}
