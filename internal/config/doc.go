// Package config loads markup.yaml.
//
// The file is optional. Missing values fall back to defaults and a few
// environment variables override the file.
//
// # Configuration File Structure
//
//	render:
//	  indent: "    "
//	  compact: false
//	server:
//	  addr: ":8080"
//	  docs: docs
//	  cacheTTL: 5m
//	  redisURL: redis://localhost:6379/0
//	publish:
//	  bucket: my-site
//	  prefix: pages/
//	  region: us-east-1
//	  endpoint: http://localhost:9000
//	log:
//	  level: info
//	  format: text
//
// JSON files are accepted as well since YAML is a superset of JSON.
//
// # Environment
//
//	MARKUP_ADDR       server.addr
//	MARKUP_DOCS       server.docs
//	MARKUP_REDIS_URL  server.redisURL
//	MARKUP_BUCKET     publish.bucket
//	MARKUP_REGION     publish.region
//	MARKUP_LOG_LEVEL  log.level
package config
