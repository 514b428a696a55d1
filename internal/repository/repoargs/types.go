package repoargs

type RepositoryName string

const (
	PartyRepoName       RepositoryName = "party"
	DueRepoName         RepositoryName = "due"
	PaymentRepoName     RepositoryName = "payment"
	TransactionRepoName RepositoryName = "transaction"
	AnalyticsRepoName   RepositoryName = "analytics"
	CreditRepoName      RepositoryName = "credit"
)
