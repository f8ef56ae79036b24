package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadSymbolList reads one symbol per line, or comma separated, skipping
// blanks, duplicates and a leading "symbol" header.
func ReadSymbolList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadSymbolList: %w", err)
	}
	defer file.Close()

	var symbols []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		for _, field := range strings.Split(scanner.Text(), ",") {
			symbol := strings.ToUpper(strings.TrimSpace(field))
			if symbol == "" || symbol == "SYMBOL" {
				continue
			}

			if _, found := seen[symbol]; found {
				continue
			}

			seen[symbol] = struct{}{}
			symbols = append(symbols, symbol)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ReadSymbolList: %w", err)
	}

	return symbols, nil
}
