// Package lovetype classifies the compatibility of a pair of personality
// types. Each pair is projected into a four-axis ratio space, matched
// against macro-category centroids, and refined into one of sixteen micro
// types with descriptive copy and a confidence score.
//
// Quick start:
//
//	lt, err := lovetype.New(lovetype.WithDataDir("api"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := lt.Classify("ロマンチスト", "冒険家")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Macro.Top, res.Micro.Type, res.Confidence)
//
// Reference data is read lazily from the data directory on first use and
// cached for the lifetime of the instance. A Lovetype is safe for
// concurrent use. Create once, reuse across requests.
package lovetype
