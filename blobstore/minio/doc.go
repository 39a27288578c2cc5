// Package minio stores ledger logs in MinIO or any S3-compatible server.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := minioblob.NewStore(client, "benchmarks", "ledger/")
//	l := mstledger.New(store)
//
// PutObject replaces objects whole, which gives Put the same atomic-replace
// behavior as the local store.
package minio
