package globalsvc

// DefaultRegistry returns the registry holding every built-in panel builder.
// The registration order below is the order panels render in.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("kms", buildKMSSummary)
	r.Register("s3", buildS3Summary)
	r.Register("iam", buildIAMSummary)
	r.Register("route53", buildRoute53Summary)
	r.Register("acm", buildACMSummary)
	r.Register("eks", buildEKSSummary)
	r.Register("ecs", buildECSSummary)
	r.Register("ssm", buildSSMSummary)
	r.Register("secretsmanager", buildSecretsSummary)
	r.Register("cost", buildCostSummary)
	return r
}
