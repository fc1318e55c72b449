package sqlinline

const QInsertMeal = `--sql c501a7f6-9c5e-4ea0-a9c9-e11a1185572e
insert into meals(id, user_id, name, calories, time, created_at)
values (
  gen_random_uuid(),
  $1::uuid,
  $2::text,
  $3::int,
  coalesce($4::timestamptz, now()),
  now()
)
returning id, time;
`

const QListMealsSince = `--sql ae191c3b-5273-46c5-a0de-8c58062f4ed3
select id, user_id, name, calories, time
from meals
where user_id = $1::uuid
  and time >= $2::timestamptz
order by time desc;
`
