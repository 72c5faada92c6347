package main

import (
	"context"
	"log"
	"strconv"

	"github.com/arvind1901/GLoan-App/configs"
	"github.com/arvind1901/GLoan-App/internal/app/router"
	"github.com/arvind1901/GLoan-App/internal/pkg/db"
	"github.com/arvind1901/GLoan-App/internal/pkg/gcs"
	"github.com/arvind1901/GLoan-App/internal/pkg/kafka/producer"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/otel"
	"github.com/arvind1901/GLoan-App/internal/pkg/pubsub"
	"github.com/arvind1901/GLoan-App/internal/pkg/redis"
	"github.com/arvind1901/GLoan-App/internal/pkg/utils/worker"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	// DB Connection
	mdb, dbErr := db.NewMongoDB()
	if dbErr != nil {
		log.Fatalf("Error connecting to MongoDB: %v", dbErr)
	}
	db.MDB = mdb
	defer mdb.Close()

	db.EnsureIndexes()

	topic := configs.KAFKA_TOPIC
	server := configs.KAFKA_SERVER
	kafkaProducer, err := producer.NewKafkaProducer(server, topic)
	if err != nil {
		logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
	}
	logger.Info(ctx, "Kafka Producer Created")
	producer.KafkaProducer = kafkaProducer
	defer kafkaProducer.Close()

	// Initialize Pub/Sub Publisher
	pubsubPublisher, err := pubsub.NewPubSubPublisher(ctx, configs.PROJECT_ID)
	if err != nil {
		logger.Error(ctx, "Failed to create Pub/Sub Publisher: %v", err)
	}
	defer pubsubPublisher.Close()
	logger.Info(ctx, "Pub/Sub Publisher Created")

	gcsClient, err := gcs.NewGCSClient(ctx, configs.BUCKET_NAME, configs.REPORT_FOLDER)
	if err != nil {
		logger.Error(ctx, "Failed to create GCS client: %v", err)
	}
	defer gcsClient.Close(ctx)

	numberOfWorkers, er := strconv.Atoi(configs.WORKER_POOL)
	if er != nil {
		logger.Error(ctx, er)
	}

	// Connect to Redis
	redisClient, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	workerPool := worker.NewWorkerPool(numberOfWorkers)
	defer workerPool.Stop()

	r := router.SetupRouter(workerPool, redisClient.Client, pubsubPublisher, gcsClient)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
