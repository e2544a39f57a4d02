package storage

import "shiftbot/internal/domain"

// reportModelToDomain converts a ReportModel (GORM) to domain.Report.
// Operations are expected to be preloaded in Seq order.
func reportModelToDomain(m ReportModel) domain.Report {
	operations := make([]domain.Operation, len(m.Operations))
	for i, op := range m.Operations {
		operations[i] = operationModelToDomain(op)
	}

	return domain.Report{
		ID:         m.ID,
		Number:     m.Number,
		Crew:       m.Crew,
		Well:       m.Well,
		Field:      m.Field,
		Operations: operations,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
	}
}

// operationModelToDomain converts an OperationModel to domain.Operation
func operationModelToDomain(m OperationModel) domain.Operation {
	return domain.Operation{
		Shift:          domain.ShiftLabel(m.Shift),
		Name:           m.Name,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		Equipment:      m.Equipment,
		Representative: m.Representative,
		Materials:      m.Materials,
	}
}

// domainToReportModel converts a domain.Report to its GORM models
func domainToReportModel(r domain.Report) ReportModel {
	operations := make([]OperationModel, len(r.Operations))
	for i, op := range r.Operations {
		operations[i] = OperationModel{
			ReportID:       r.ID,
			Seq:            i + 1,
			Shift:          string(op.Shift),
			Name:           op.Name,
			StartTime:      op.StartTime,
			EndTime:        op.EndTime,
			Equipment:      op.Equipment,
			Representative: op.Representative,
			Materials:      op.Materials,
		}
	}

	return ReportModel{
		ID:         r.ID,
		Number:     r.Number,
		Crew:       r.Crew,
		Well:       r.Well,
		Field:      r.Field,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
		Operations: operations,
	}
}

// changeLogModelToDomain converts a ChangeLogModel to domain.ChangeLogEntry
func changeLogModelToDomain(m ChangeLogModel) domain.ChangeLogEntry {
	return domain.ChangeLogEntry{
		ReportID:  m.ReportID,
		Actor:     m.Actor,
		Action:    m.Action,
		Timestamp: m.Timestamp,
	}
}

// domainToChangeLogModel converts a domain.ChangeLogEntry to ChangeLogModel
func domainToChangeLogModel(e domain.ChangeLogEntry) ChangeLogModel {
	return ChangeLogModel{
		ReportID:  e.ReportID,
		Actor:     e.Actor,
		Action:    e.Action,
		Timestamp: e.Timestamp,
	}
}
