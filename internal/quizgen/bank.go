package quizgen

import (
	"strings"

	"github.com/certlab/certquiz-backend/internal/model"
)

// Emergency quiz parameters used by the orchestrator's outer recovery
// boundary when even the ordinary fallback path fails.
const (
	EmergencyExamName      = "Cloud Certification Practice"
	EmergencyTopic         = "General Cloud Concepts"
	EmergencyQuestionCount = 10
)

// FromBank satisfies a request for n questions from the static bank matching
// examName. Bank questions are reused cyclically (i mod bankSize), so the
// result always has exactly n questions with 1-based ids; duplicates past the
// bank size are an accepted degradation. When topics are given, each
// question's topic is relabeled to topics[i mod len(topics)].
func FromBank(examName string, topics []string, n int) []model.QuizQuestion {
	if n <= 0 {
		return nil
	}

	bank := bankFor(examName)
	questions := make([]model.QuizQuestion, 0, n)

	for i := 0; i < n; i++ {
		q := bank[i%len(bank)]
		q.ID = i + 1
		if len(topics) > 0 {
			q.Topic = topics[i%len(topics)]
		}
		questions = append(questions, q)
	}

	return questions
}

// bankFor picks the provider bank by keyword match on the exam name.
func bankFor(examName string) []model.QuizQuestion {
	name := strings.ToLower(examName)
	switch {
	case strings.Contains(name, "aws") || strings.Contains(name, "amazon"):
		return awsBank
	case strings.Contains(name, "azure") || strings.Contains(name, "microsoft"):
		return azureBank
	case strings.Contains(name, "gcp") || strings.Contains(name, "google"):
		return gcpBank
	default:
		return genericBank
	}
}

// The banks below are immutable seed data. FromBank copies questions by
// value and never mutates bank entries.

var awsBank = []model.QuizQuestion{
	{
		Question:      "A company needs to store infrequently accessed backups for at least 7 years at the lowest possible cost. Which storage service should they use?",
		Options:       []string{"Amazon S3 Glacier Deep Archive", "Amazon S3 Standard", "Amazon EBS", "Amazon EFS"},
		CorrectAnswer: model.SingleAnswer(0),
		Explanation:   "S3 Glacier Deep Archive is the lowest-cost storage class, designed for long-term retention of data accessed once or twice a year.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Storage Services",
	},
	{
		Question:      "Which AWS service lets you run code without provisioning or managing servers?",
		Options:       []string{"Amazon EC2", "AWS Lambda", "Amazon ECS", "AWS Elastic Beanstalk"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "AWS Lambda is a serverless compute service that runs code in response to events and automatically manages the underlying compute resources.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Compute Services",
	},
	{
		Question:      "A web application experiences unpredictable traffic spikes. Which two services together allow the compute fleet to grow and shrink automatically while distributing requests?",
		Options:       []string{"Auto Scaling group", "Elastic Load Balancing", "AWS Direct Connect", "Amazon CloudFront"},
		CorrectAnswer: model.MultiAnswer(0, 1),
		Explanation:   "An Auto Scaling group adjusts capacity to demand, and Elastic Load Balancing distributes incoming traffic across the healthy instances in that group.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Compute Services",
	},
	{
		Question:      "Under the AWS shared responsibility model, which task is the customer's responsibility?",
		Options:       []string{"Patching the hypervisor", "Physical security of data centers", "Configuring security group rules", "Maintaining edge locations"},
		CorrectAnswer: model.SingleAnswer(2),
		Explanation:   "AWS secures the infrastructure; customers are responsible for security in the cloud, which includes network controls such as security group configuration.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Security and Compliance",
	},
	{
		Question:      "Which service provides a fully managed relational database with automated backups and multi-AZ failover?",
		Options:       []string{"Amazon DynamoDB", "Amazon Redshift", "Amazon RDS", "Amazon ElastiCache"},
		CorrectAnswer: model.SingleAnswer(2),
		Explanation:   "Amazon RDS manages relational databases and offers automated backups and Multi-AZ deployments for high availability.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Database Services",
	},
	{
		Question:      "A startup wants to estimate its monthly AWS bill before migrating. Which tool should they use?",
		Options:       []string{"AWS Pricing Calculator", "AWS Cost Explorer", "AWS Budgets", "AWS Trusted Advisor"},
		CorrectAnswer: model.SingleAnswer(0),
		Explanation:   "The AWS Pricing Calculator models costs for planned workloads. Cost Explorer and Budgets analyze and track costs you already incur.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Billing and Pricing",
	},
	{
		Question:      "Which component of Amazon VPC acts as a virtual firewall at the instance level?",
		Options:       []string{"Network ACL", "Security group", "Route table", "Internet gateway"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "Security groups filter traffic at the instance (ENI) level and are stateful; network ACLs operate at the subnet level and are stateless.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Networking",
	},
	{
		Question:      "Which services can be used to grant temporary, limited-privilege credentials to an application? (Choose two)",
		Options:       []string{"AWS STS", "IAM roles", "IAM user access keys", "Amazon Cognito user pool passwords"},
		CorrectAnswer: model.MultiAnswer(0, 1),
		Explanation:   "AWS STS issues short-lived credentials, typically obtained by assuming an IAM role. Long-lived access keys and passwords are not temporary credentials.",
		Difficulty:    model.DifficultyHard,
		Topic:         "Security and Compliance",
	},
	{
		Question:      "A media site needs to deliver static content to global users with low latency. Which service should they add?",
		Options:       []string{"Amazon CloudFront", "AWS Global Accelerator", "Amazon Route 53", "AWS Snowball"},
		CorrectAnswer: model.SingleAnswer(0),
		Explanation:   "CloudFront is a CDN that caches static content at edge locations close to users, reducing latency for global audiences.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Networking",
	},
	{
		Question:      "Which AWS service records API calls made in an account for auditing purposes?",
		Options:       []string{"Amazon CloudWatch", "AWS CloudTrail", "AWS Config", "Amazon Inspector"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "CloudTrail logs account activity and API usage across AWS infrastructure, which is the basis for auditing and compliance investigations.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Security and Compliance",
	},
}

var azureBank = []model.QuizQuestion{
	{
		Question:      "Which Azure service provides serverless event-driven compute?",
		Options:       []string{"Azure Virtual Machines", "Azure Functions", "Azure Kubernetes Service", "Azure Batch"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "Azure Functions runs event-triggered code without requiring the user to manage infrastructure.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Compute",
	},
	{
		Question:      "A company wants to store unstructured objects such as images and documents. Which Azure storage option fits best?",
		Options:       []string{"Blob Storage", "Azure Files", "Queue Storage", "Table Storage"},
		CorrectAnswer: model.SingleAnswer(0),
		Explanation:   "Blob Storage is optimized for massive amounts of unstructured object data.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Storage",
	},
	{
		Question:      "Which tool applies organizational standards and assesses compliance across Azure resources at scale?",
		Options:       []string{"Azure Monitor", "Azure Policy", "Azure Advisor", "Azure Service Health"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "Azure Policy evaluates resources against business rules and can remediate non-compliant resources automatically.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Governance",
	},
	{
		Question:      "Which two identity features help protect Azure AD accounts against credential theft? (Choose two)",
		Options:       []string{"Multi-factor authentication", "Conditional Access", "Resource locks", "Availability zones"},
		CorrectAnswer: model.MultiAnswer(0, 1),
		Explanation:   "MFA adds a second verification factor and Conditional Access enforces sign-in policies; locks and availability zones are not identity protections.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Identity and Access",
	},
	{
		Question:      "What is the Azure consumption-based pricing model an example of?",
		Options:       []string{"Capital expenditure", "Operational expenditure", "Fixed-term licensing", "Perpetual licensing"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "Pay-as-you-go cloud spending is operational expenditure: you pay for what you use rather than investing up front.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Cost Management",
	},
	{
		Question:      "A solution must keep running even if an entire Azure datacenter fails. What should the VMs be deployed across?",
		Options:       []string{"Availability sets", "Availability zones", "Resource groups", "Management groups"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "Availability zones are physically separate datacenters within a region, protecting workloads against datacenter-level failure.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Reliability",
	},
}

var gcpBank = []model.QuizQuestion{
	{
		Question:      "Which Google Cloud service runs stateless containers in a fully managed serverless environment?",
		Options:       []string{"Compute Engine", "Cloud Run", "Google Kubernetes Engine", "App Engine flexible"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "Cloud Run executes containers serverlessly, scaling to zero when idle.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Compute",
	},
	{
		Question:      "Which storage class in Cloud Storage is the most cost-effective for data accessed less than once a year?",
		Options:       []string{"Standard", "Nearline", "Coldline", "Archive"},
		CorrectAnswer: model.SingleAnswer(3),
		Explanation:   "Archive storage has the lowest at-rest price and is intended for data accessed less than once a year.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Storage",
	},
	{
		Question:      "A team needs a serverless data warehouse for petabyte-scale analytics using SQL. Which service should they choose?",
		Options:       []string{"Cloud SQL", "BigQuery", "Cloud Spanner", "Firestore"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "BigQuery is Google Cloud's serverless, highly scalable data warehouse with standard SQL support.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Data and Analytics",
	},
	{
		Question:      "Which two practices follow the principle of least privilege in Google Cloud IAM? (Choose two)",
		Options:       []string{"Granting predefined roles instead of basic roles", "Using service accounts per workload", "Granting the Owner role to all developers", "Sharing one service account key across teams"},
		CorrectAnswer: model.MultiAnswer(0, 1),
		Explanation:   "Narrow predefined roles and per-workload service accounts scope access tightly; broad Owner grants and shared keys do the opposite.",
		Difficulty:    model.DifficultyHard,
		Topic:         "Identity and Security",
	},
	{
		Question:      "What does a Google Cloud project primarily provide?",
		Options:       []string{"A billing-isolated container for resources", "A physical datacenter allocation", "A dedicated VPC per user", "A single-zone deployment target"},
		CorrectAnswer: model.SingleAnswer(0),
		Explanation:   "Projects are the base-level organizing entity: resources, APIs, billing, and permissions are all scoped to a project.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Resource Management",
	},
	{
		Question:      "Which service distributes HTTP(S) traffic to backends in multiple regions from a single anycast IP?",
		Options:       []string{"Cloud CDN", "Global external HTTP(S) Load Balancer", "Cloud DNS", "Cloud NAT"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "The global external HTTP(S) load balancer fronts multi-region backends behind one anycast IP address.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Networking",
	},
}

var genericBank = []model.QuizQuestion{
	{
		Question:      "What is the primary benefit of the elasticity of cloud computing?",
		Options:       []string{"Resources scale with demand so you pay only for what you use", "Hardware never fails", "Applications need no maintenance", "Data is automatically public"},
		CorrectAnswer: model.SingleAnswer(0),
		Explanation:   "Elasticity lets capacity grow and shrink with demand, which avoids paying for idle resources.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "General Cloud Concepts",
	},
	{
		Question:      "Which cloud service model gives the customer the most control over the operating system?",
		Options:       []string{"Software as a Service", "Platform as a Service", "Infrastructure as a Service", "Function as a Service"},
		CorrectAnswer: model.SingleAnswer(2),
		Explanation:   "IaaS provides virtual machines where the customer manages the OS and everything above it.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "General Cloud Concepts",
	},
	{
		Question:      "A company keeps sensitive workloads on-premises but runs its public website in the cloud. Which deployment model is this?",
		Options:       []string{"Public cloud", "Private cloud", "Hybrid cloud", "Community cloud"},
		CorrectAnswer: model.SingleAnswer(2),
		Explanation:   "A hybrid model combines on-premises (private) infrastructure with public cloud services.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "General Cloud Concepts",
	},
	{
		Question:      "Which two measures most directly improve a system's availability? (Choose two)",
		Options:       []string{"Deploying across multiple zones", "Adding automated health-checked failover", "Increasing instance CPU size", "Minifying application assets"},
		CorrectAnswer: model.MultiAnswer(0, 1),
		Explanation:   "Redundancy across failure domains plus automated failover removes single points of failure; bigger CPUs and smaller assets affect performance, not availability.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Reliability",
	},
	{
		Question:      "What does encryption in transit protect against?",
		Options:       []string{"Disk theft", "Eavesdropping on network traffic", "Accidental deletion", "Misconfigured IAM policies"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "Encrypting data as it moves between systems prevents interception and reading of traffic on the network path.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Security",
	},
	{
		Question:      "Which practice is central to infrastructure as code?",
		Options:       []string{"Manually configuring servers via SSH", "Declaring infrastructure in versioned template files", "Purchasing hardware ahead of demand", "Disabling audit logging"},
		CorrectAnswer: model.SingleAnswer(1),
		Explanation:   "IaC describes environments declaratively in files kept under version control, making deployments repeatable and reviewable.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Operations",
	},
	{
		Question:      "A scenario requires strong consistency, ACID transactions, and complex joins. Which database family fits best?",
		Options:       []string{"Relational", "Key-value", "Document", "Time-series"},
		CorrectAnswer: model.SingleAnswer(0),
		Explanation:   "Relational databases provide ACID transactions and SQL joins; the listed NoSQL families trade those away for other strengths.",
		Difficulty:    model.DifficultyMedium,
		Topic:         "Databases",
	},
	{
		Question:      "What is the main purpose of a content delivery network?",
		Options:       []string{"Serving content from locations close to users", "Encrypting databases", "Scheduling batch jobs", "Managing DNS registrars"},
		CorrectAnswer: model.SingleAnswer(0),
		Explanation:   "CDNs cache content at edge locations near users, cutting latency and origin load.",
		Difficulty:    model.DifficultyEasy,
		Topic:         "Networking",
	},
}
