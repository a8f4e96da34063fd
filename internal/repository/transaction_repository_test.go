package repository_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tirasundara/change-service/internal/repository"
)

func writeTransactionsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestFileTransactionRepository_GetTransactions(t *testing.T) {
	content := "# owed,paid\n" +
		"2.12,3.00\n" +
		"\n" +
		"2,12,3,00\n" +
		"1.00,1.00\n"
	path := writeTransactionsFile(t, content)

	repo := repository.NewFileTransactionRepository(path, nil)

	txns, err := repo.GetTransactions()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(txns) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(txns))
	}

	// Both layouts must produce identical amounts
	for i := 0; i < 2; i++ {
		if txns[i].Owed != 212 || txns[i].Paid != 300 {
			t.Errorf("Expected transaction %d to be owed=212 paid=300, got owed=%d paid=%d",
				i, txns[i].Owed, txns[i].Paid)
		}
	}

	if txns[2].Owed != 100 || txns[2].Paid != 100 {
		t.Errorf("Expected third transaction to be owed=100 paid=100, got owed=%d paid=%d",
			txns[2].Owed, txns[2].Paid)
	}

	// Line numbers must point at the real file lines, comments included
	if txns[0].Line != 2 {
		t.Errorf("Expected first transaction on line 2, got %d", txns[0].Line)
	}
	if txns[1].Line != 4 {
		t.Errorf("Expected second transaction on line 4, got %d", txns[1].Line)
	}
}

func TestFileTransactionRepository_MalformedLine(t *testing.T) {
	path := writeTransactionsFile(t, "2.12,3.00\n1.00,2.00,3.00\n")

	repo := repository.NewFileTransactionRepository(path, nil)

	_, err := repo.GetTransactions()
	if err == nil {
		t.Fatalf("Expected an error for the malformed line, got none")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected the error to name line 2, got %q", err.Error())
	}
}

func TestFileTransactionRepository_MissingFile(t *testing.T) {
	repo := repository.NewFileTransactionRepository(filepath.Join(t.TempDir(), "nope.txt"), nil)

	if _, err := repo.GetTransactions(); err == nil {
		t.Errorf("Expected an error for a missing file, got none")
	}
}
