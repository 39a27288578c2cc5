// Package s3 stores ledger logs in Amazon S3.
//
//	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-1"))
//	if err != nil { ... }
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "benchmarks", "ledger/")
//
// Writes go through the transfer manager so large archived logs are uploaded
// in parts. Reads are ranged GETs.
package s3
