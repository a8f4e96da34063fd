package repository

import (
	"fmt"

	"github.com/tirasundara/change-service/internal/domain"
	"github.com/tirasundara/change-service/pkg/amountutil"
	"github.com/tirasundara/change-service/pkg/fileutil"
)

// FileTransactionRepository implements the TransactionRepository interface
// for plain-text files with one "owed,paid" transaction per line
type FileTransactionRepository struct {
	FilePath string
	parser   *amountutil.AmountParser
}

// NewFileTransactionRepository creates a new FileTransactionRepository
func NewFileTransactionRepository(fp string, parser *amountutil.AmountParser) *FileTransactionRepository {
	if parser == nil {
		parser = amountutil.NewAmountParser(0)
	}

	return &FileTransactionRepository{
		FilePath: fp,
		parser:   parser,
	}
}

// GetTransactions reads and parses every transaction line in the file.
// The first malformed line aborts the read with its line number in the error.
func (r *FileTransactionRepository) GetTransactions() ([]domain.TransactionInput, error) {
	var txns []domain.TransactionInput

	reader := fileutil.NewLineReader(r.FilePath)
	err := reader.ReadAndProcessByLine(func(lineNo int, line string) error {
		owed, paid, err := r.parser.ParseTransactionLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		txns = append(txns, domain.TransactionInput{Line: lineNo, Owed: owed, Paid: paid})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}

	return txns, nil
}
