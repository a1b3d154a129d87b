// Package translateplus provides a Go client SDK for the TranslatePlus
// translation API: text, batch, HTML, email and subtitle translation,
// language detection, and asynchronous i18n file translation jobs.
//
// Basic usage:
//
//	client, err := translateplus.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.Translate(ctx, "Hello", "en", "fr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Translation)
//
// All requests issued by one client share a transport and a bounded
// concurrency gate; failed requests are retried with exponential backoff
// where retrying can help (rate limits, transport failures) and surface as
// classified errors otherwise.
package translateplus
