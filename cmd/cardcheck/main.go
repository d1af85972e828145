package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/VK-10-9/Joshi-card/checker"
	"github.com/VK-10-9/Joshi-card/checker/models"
	"github.com/VK-10-9/Joshi-card/internal/cardlog"
	"github.com/VK-10-9/Joshi-card/internal/expiry"
	"github.com/VK-10-9/Joshi-card/internal/pan"
	"github.com/VK-10-9/Joshi-card/internal/prompt"
	"golang.org/x/exp/slog"
)

// Version information set via ldflags during build
var Version = "dev"

var (
	flagLog     = flag.String("log", "", "record log path (default from CARDCHECK_LOG_PATH or card_log.txt)")
	flagInput   = flag.String("input", "", "read card fields from a file (one per line) instead of the terminal")
	flagNoLog   = flag.Bool("no-log", false, "skip appending the record log")
	flagVersion = flag.Bool("version", false, "show version information")

	// generate subcommand
	flagBIN      = flag.String("bin", "", "6/8/9-digit BIN prefix (default from config)")
	flagLength   = flag.Int("length", 16, "generated PAN length (13..19)")
	flagSequence = flag.String("sequence", "", "optional numeric sequence (before check digit)")
	flagProduct  = flag.String("product", "", "card product: credit|debit (default from config)")
	flagYears    = flag.Int("years", 0, "override validity years (if > 0)")
	flagVerbose  = flag.Bool("verbose", false, "print full PAN (otherwise masked)")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("cardcheck %s\n", Version)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr))

	cfg, err := checker.LoadConfig()
	if err != nil {
		fail("reading config: %v", err)
	}
	if *flagLog != "" {
		cfg.LogPath = *flagLog
	}

	cmd := "check"
	if args := flag.Args(); len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "check":
		runCheck(logger, cfg)
	case "generate":
		runGenerate(cfg)
	case "version":
		fmt.Printf("cardcheck %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// runCheck drives the interactive validation flow. Validation failures go to
// stderr; the process still exits 0.
func runCheck(logger *slog.Logger, cfg *checker.Config) {
	var io prompt.IO
	if *flagInput != "" {
		f, err := os.Open(*flagInput)
		if err != nil {
			fail("opening input file: %v", err)
		}
		defer f.Close()
		io = prompt.New(f, os.Stdout)
	} else {
		io = prompt.NewStdio()
	}

	io.Println("💳 Welcome to Credit Card Validator 💳")
	io.Println("")

	input, err := readCard(io)
	if err != nil {
		logger.Error("reading input", "err", err)
		fmt.Fprintln(os.Stderr, "Unexpected error occurred!")
		return
	}

	var records *cardlog.Writer
	if !*flagNoLog {
		records = cardlog.New(cfg.LogPath)
	}

	svc := checker.NewService(logger, cfg, records, nil)
	report, err := svc.Check(input)
	if err != nil {
		switch {
		case errors.Is(err, pan.ErrInvalidLength):
			fmt.Fprintln(os.Stderr, "❌ Invalid card number length!")
		case errors.Is(err, pan.ErrChecksum):
			fmt.Fprintln(os.Stderr, "❌ Card number failed Luhn check! Invalid.")
		default:
			logger.Error("check failed", "err", err)
			fmt.Fprintln(os.Stderr, "Unexpected error occurred!")
		}
		return
	}

	cvvStatus := "Valid"
	if !report.CVVValid {
		cvvStatus = "Invalid"
	}

	io.Println("")
	io.Printf("Card Holder: %s\n", report.Holder)
	io.Printf("Card Number (masked): %s\n", report.Masked)
	io.Printf("Card Type: %s\n", report.Scheme)
	io.Printf("CVV Status: %s\n", cvvStatus)
	switch report.ExpiryStatus {
	case expiry.StatusExpired:
		io.Println("🔴 Status: Card is **Expired**!")
	case expiry.StatusExpiringSoon:
		io.Println("🟡 Status: Card is expiring **soon**!")
	default:
		io.Println("🟢 Status: Card is **Valid**.")
	}
	io.Printf("AI Risk Score (0=Safe, 1=High Risk): %.2f\n", report.RiskScore)
}

func readCard(io prompt.IO) (models.CardInput, error) {
	number, err := io.ReadInput("Enter Card Number (no spaces or dashes): ")
	if err != nil {
		return models.CardInput{}, err
	}
	exp, err := io.ReadInput("Enter Expiry Date (MM/YY): ")
	if err != nil {
		return models.CardInput{}, err
	}
	holder, err := io.ReadInput("Enter Card Holder Name: ")
	if err != nil {
		return models.CardInput{}, err
	}
	cvv, err := io.ReadSecret("Enter CVV: ")
	if err != nil {
		return models.CardInput{}, err
	}
	return models.CardInput{Number: number, Expiry: exp, Holder: holder, CVV: cvv}, nil
}

// runGenerate produces a Luhn-valid test PAN with a card-face expiry.
func runGenerate(cfg *checker.Config) {
	bin := cfg.BINPrefix
	if *flagBIN != "" {
		bin = *flagBIN
	}
	product := cfg.CardProduct
	if *flagProduct != "" {
		product = *flagProduct
	}
	must(pan.ValidateBIN(bin))
	if len(cfg.ProductYears) > 0 {
		expiry.SetProductYears(cfg.ProductYears)
	}

	generated := must1(pan.Generate(bin, *flagLength, *flagSequence))
	years := expiry.YearsForProduct(product, *flagYears)
	now := time.Now()
	face := expiry.CardFace(now, years)
	yymm := expiry.YYMM(now, years)

	printPAN := pan.Mask(generated)
	if *flagVerbose {
		printPAN = generated + "   (WARNING: printing full PAN)"
	}
	fmt.Printf("PAN: %s\nEXP(card-face): %s  EXP(api): %s\n", printPAN, face, yymm)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: cardcheck [flags] [command]

Commands:
  check      validate a card record from interactive input (default)
  generate   generate a Luhn-valid test PAN
  version    show version information

Flags:
`)
	flag.PrintDefaults()
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}

func must1[T any](v T, err error) T {
	if err != nil {
		fail("%v", err)
	}
	return v
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
