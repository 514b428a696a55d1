package domain

type RoleType string

const (
	RoleSupplier RoleType = "supplier"
	RoleRetailer RoleType = "retailer"
	RoleFintech  RoleType = "fintech"
)

func (r RoleType) Valid() bool {
	switch r {
	case RoleSupplier, RoleRetailer, RoleFintech:
		return true
	}
	return false
}

type DueStatusType string

const (
	DueStatusPending DueStatusType = "pending"
	DueStatusPaid    DueStatusType = "paid"
	DueStatusOverdue DueStatusType = "overdue"
)

func (s DueStatusType) Valid() bool {
	switch s {
	case DueStatusPending, DueStatusPaid, DueStatusOverdue:
		return true
	}
	return false
}

type PaymentStatusType string

const (
	PaymentStatusPending   PaymentStatusType = "pending"
	PaymentStatusCompleted PaymentStatusType = "completed"
	PaymentStatusFailed    PaymentStatusType = "failed"
)

type TransactionStatusType string

const (
	TransactionStatusPending   TransactionStatusType = "pending"
	TransactionStatusCompleted TransactionStatusType = "completed"
	TransactionStatusFailed    TransactionStatusType = "failed"
)

func (s TransactionStatusType) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	}
	return false
}

type AssessmentStatusType string

const (
	AssessmentStatusPending  AssessmentStatusType = "pending"
	AssessmentStatusApproved AssessmentStatusType = "approved"
	AssessmentStatusRejected AssessmentStatusType = "rejected"
)

func (s AssessmentStatusType) Valid() bool {
	switch s {
	case AssessmentStatusPending, AssessmentStatusApproved, AssessmentStatusRejected:
		return true
	}
	return false
}

type DocumentType string

const (
	DocumentGSTCertificate     DocumentType = "gst_certificate"
	DocumentBankStatement      DocumentType = "bank_statement"
	DocumentFinancialStatement DocumentType = "financial_statement"
	DocumentShopLicense        DocumentType = "shop_license"
	DocumentOwnershipDocs      DocumentType = "ownership_docs"
)

func (d DocumentType) Valid() bool {
	switch d {
	case DocumentGSTCertificate, DocumentBankStatement, DocumentFinancialStatement,
		DocumentShopLicense, DocumentOwnershipDocs:
		return true
	}
	return false
}

type RelationshipTierType string

const (
	TierExcellent RelationshipTierType = "excellent"
	TierGood      RelationshipTierType = "good"
	TierFair      RelationshipTierType = "fair"
	TierNew       RelationshipTierType = "new"
)
