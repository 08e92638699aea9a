package udf

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/itusdata/valuations-cli-go/internal/core"
	"github.com/itusdata/valuations-cli-go/internal/output"
)

// DailyData returns the stored value of one field for a company on a date,
// or a message when no record matches.
func (s *Service) DailyData(accordCode, field, date string) (*output.Table, error) {
	return logged("DailyData", []string{accordCode, field, date}, func() (*output.Table, error) {
		if err := core.ValidateInputs(
			core.Input{Name: "accord_code", Value: accordCode},
			core.Input{Name: "field", Value: field},
			core.Input{Name: "date_value", Value: date},
		); err != nil {
			return nil, err
		}
		code, err := core.ParseAccordCode(accordCode)
		if err != nil {
			return nil, err
		}
		col, err := s.checkField(field)
		if err != nil {
			return nil, err
		}
		day := core.ToStorageForm(date)

		sqlText := fmt.Sprintf("SELECT %s FROM %s WHERE accord_code=? AND date=?", col, s.settings.TableName)
		table, err := s.memo.Execute(sqlText, code, day)
		if err != nil {
			return nil, err
		}
		if table.Empty() {
			return output.Message(fmt.Sprintf("No data found for %d on %s", code, day)), nil
		}
		return output.Scalar(table.Rows[0][0]), nil
	})
}

// Series returns (date, field) rows for a company over an inclusive date
// range, ascending by date.
func (s *Service) Series(accordCode, field, startDate, endDate string) (*output.Table, error) {
	return logged("Series", []string{accordCode, field, startDate, endDate}, func() (*output.Table, error) {
		if err := core.ValidateInputs(
			core.Input{Name: "accord_code", Value: accordCode},
			core.Input{Name: "field", Value: field},
			core.Input{Name: "start_date", Value: startDate},
			core.Input{Name: "end_date", Value: endDate},
		); err != nil {
			return nil, err
		}
		code, err := core.ParseAccordCode(accordCode)
		if err != nil {
			return nil, err
		}
		col, err := s.checkField(field)
		if err != nil {
			return nil, err
		}
		start := core.ToStorageForm(startDate)
		end := core.ToStorageForm(endDate)

		sqlText := fmt.Sprintf("SELECT date, %s FROM %s WHERE accord_code=? AND date BETWEEN ? AND ? ORDER BY date", col, s.settings.TableName)
		table, err := s.memo.Execute(sqlText, code, start, end)
		if err != nil {
			return nil, err
		}
		if table.Empty() {
			return output.Message(fmt.Sprintf("No data found for %d between %s and %s", code, start, end)), nil
		}
		table.MapColumn("date", s.displayDate)
		return table, nil
	})
}

// DailyMatrix returns a cross-section of every company on a date: identity
// columns plus the requested field, ascending by accord code.
func (s *Service) DailyMatrix(date, field string) (*output.Table, error) {
	return logged("DailyMatrix", []string{date, field}, func() (*output.Table, error) {
		if err := core.ValidateInputs(
			core.Input{Name: "date_value", Value: date},
			core.Input{Name: "field", Value: field},
		); err != nil {
			return nil, err
		}
		col, err := s.checkField(field)
		if err != nil {
			return nil, err
		}
		day := core.ToStorageForm(date)

		sqlText := fmt.Sprintf("SELECT accord_code, company_name, sector, mcap_category, %s FROM %s WHERE date=? ORDER BY accord_code", col, s.settings.TableName)
		table, err := s.memo.Execute(sqlText, day)
		if err != nil {
			return nil, err
		}
		if table.Empty() {
			return output.Message(fmt.Sprintf("No data found for %s", day)), nil
		}
		// No date column is projected here; MapColumn no-ops unless the
		// requested field happens to be the date itself.
		table.MapColumn("date", s.displayDate)
		return table, nil
	})
}

// AllValues returns the full (date, field) history of a company, ascending
// by date.
func (s *Service) AllValues(accordCode, field string) (*output.Table, error) {
	return logged("AllValues", []string{accordCode, field}, func() (*output.Table, error) {
		if err := core.ValidateInputs(
			core.Input{Name: "accord_code", Value: accordCode},
			core.Input{Name: "field", Value: field},
		); err != nil {
			return nil, err
		}
		code, err := core.ParseAccordCode(accordCode)
		if err != nil {
			return nil, err
		}
		col, err := s.checkField(field)
		if err != nil {
			return nil, err
		}

		sqlText := fmt.Sprintf("SELECT date, %s FROM %s WHERE accord_code=? ORDER BY date", col, s.settings.TableName)
		table, err := s.memo.Execute(sqlText, code)
		if err != nil {
			return nil, err
		}
		if table.Empty() {
			return output.Message(fmt.Sprintf("No data found for %d", code)), nil
		}
		table.MapColumn("date", s.displayDate)
		return table, nil
	})
}

// McapMatrix ranks every company of a market-cap bucket on a date by
// price-earnings value, descending. The queried date is appended as a
// constant column.
func (s *Service) McapMatrix(bucket, date string) (*output.Table, error) {
	return logged("McapMatrix", []string{bucket, date}, func() (*output.Table, error) {
		if err := core.ValidateInputs(
			core.Input{Name: "mcap_category", Value: bucket},
			core.Input{Name: "date_value", Value: date},
		); err != nil {
			return nil, err
		}
		day := core.ToStorageForm(date)

		sqlText := fmt.Sprintf("SELECT accord_code, company_name, sector, pe FROM %s WHERE mcap_category=? AND date=? ORDER BY pe DESC", s.settings.TableName)
		table, err := s.memo.Execute(sqlText, bucket, day)
		if err != nil {
			return nil, err
		}
		if table.Empty() {
			return output.Message(fmt.Sprintf("No data found for %s on %s", bucket, day)), nil
		}
		table.AddConstColumn("date", core.ToDisplayForm(day, s.settings.DateFormat))
		return table, nil
	})
}

// SectorPE ranks every company of a sector on a date by price-earnings
// value, descending. The queried date is appended as a constant column.
func (s *Service) SectorPE(sector, date string) (*output.Table, error) {
	return logged("SectorPE", []string{sector, date}, func() (*output.Table, error) {
		if err := core.ValidateInputs(
			core.Input{Name: "sector", Value: sector},
			core.Input{Name: "date_value", Value: date},
		); err != nil {
			return nil, err
		}
		day := core.ToStorageForm(date)

		sqlText := fmt.Sprintf("SELECT accord_code, company_name, mcap_category, pe FROM %s WHERE sector=? AND date=? ORDER BY pe DESC", s.settings.TableName)
		table, err := s.memo.Execute(sqlText, sector, day)
		if err != nil {
			return nil, err
		}
		if table.Empty() {
			return output.Message(fmt.Sprintf("No data found for sector %s on %s", sector, day)), nil
		}
		table.AddConstColumn("date", core.ToDisplayForm(day, s.settings.DateFormat))
		return table, nil
	})
}

// ClearCache empties the memo unconditionally and confirms to the caller.
func (s *Service) ClearCache() (*output.Table, error) {
	return logged("ClearCache", nil, func() (*output.Table, error) {
		s.memo.Clear()
		return output.Message("Cache cleared successfully."), nil
	})
}

// Fields lists the columns of the configured table — the set of names the
// query operations accept as fields.
func (s *Service) Fields() (*output.Table, error) {
	return logged("Fields", nil, func() (*output.Table, error) {
		cols, err := s.querier.Columns(s.settings.TableName)
		if err != nil {
			return nil, err
		}
		table := &output.Table{Header: []string{"field"}}
		for _, name := range sortedKeys(cols) {
			table.Rows = append(table.Rows, []interface{}{name})
		}
		return table, nil
	})
}

// TestAdd is the diagnostic echo used to verify host wiring.
func (s *Service) TestAdd(x, y decimal.Decimal) (*output.Table, error) {
	return output.Scalar(x.Add(y)), nil
}
