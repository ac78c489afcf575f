package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/z-labo/master-defence-faculty/logging"
)

type VoteStorage interface {
	Put(ctx context.Context, judgeID string, submission map[string]any) (string, error)
	GetAll(ctx context.Context) ([]*VoteRecord, error)
}

// S3VoteStorage keeps one JSON object per judge under
// <BaseFolder>/vote_results/<judgeId>.json. A resubmission overwrites the
// previous object, which is how "only the final vote counts" is enforced.
type S3VoteStorage struct {
	Client     *s3.Client
	Bucket     string
	BaseFolder string
}

func (s *S3VoteStorage) Put(ctx context.Context, judgeID string, submission map[string]any) (string, error) {
	key := s.voteKey(judgeID)

	body, err := json.Marshal(submission)
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to marshal submission for judge %s: %v", judgeID, err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to upload vote for judge %s: %v", judgeID, err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return key, nil
}

// GetAll lists the vote folder to completion and reads every .json object.
// A record that cannot be fetched or parsed is logged and skipped so one
// corrupt file never takes down the whole leaderboard.
func (s *S3VoteStorage) GetAll(ctx context.Context) ([]*VoteRecord, error) {
	prefix := s.votePrefix()
	records := make([]*VoteRecord, 0)

	paginator := s3.NewListObjectsV2Paginator(s.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.Bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logging.Log.Errorf("STORAGE: failed to list vote records: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrListFailed, err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !strings.HasSuffix(strings.ToLower(key), ".json") {
				continue
			}

			record, err := s.fetchRecord(ctx, key)
			if err != nil {
				logging.Log.Warnf("STORAGE: skipping vote record %s: %v", key, err)
				continue
			}
			records = append(records, record)
		}
	}

	return records, nil
}

func (s *S3VoteStorage) fetchRecord(ctx context.Context, key string) (*VoteRecord, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}

	return DecodeVoteRecord(data)
}

// DecodeVoteRecord parses a stored submission. Numbers are kept as
// json.Number so the aggregation can tell integers, floats and garbage apart.
func DecodeVoteRecord(data []byte) (*VoteRecord, error) {
	var record VoteRecord
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *S3VoteStorage) votePrefix() string {
	return strings.TrimSuffix(s.BaseFolder, "/") + "/vote_results/"
}

func (s *S3VoteStorage) voteKey(judgeID string) string {
	return s.votePrefix() + judgeID + ".json"
}
