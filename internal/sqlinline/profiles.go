package sqlinline

const QSelectProfile = `--sql a1797ea5-8dcf-4ff4-acd6-700c7a355e79
select
  user_id,
  height_cm,
  weight_kg,
  age,
  gender,
  activity_level,
  goal,
  goal_type,
  daily_calorie_goal,
  daily_water_goal_ml
from user_profiles
where user_id = $1::uuid
limit 1;
`

// QUpsertProfile never touches goal_type; legacy rows keep it until goal is set.
const QUpsertProfile = `--sql 5f580ef7-cccd-4dad-b14d-0dd5ecc86ab1
insert into user_profiles(
  id,
  user_id,
  height_cm,
  weight_kg,
  age,
  gender,
  activity_level,
  goal,
  daily_calorie_goal,
  daily_water_goal_ml,
  created_at,
  updated_at
) values (
  gen_random_uuid(),
  $1::uuid,
  $2::numeric,
  $3::numeric,
  $4::int,
  nullif($5::text, ''),
  nullif($6::text, ''),
  nullif($7::text, ''),
  $8::numeric,
  $9::numeric,
  now(),
  now()
)
on conflict (user_id) do update
set height_cm = excluded.height_cm,
    weight_kg = excluded.weight_kg,
    age = excluded.age,
    gender = excluded.gender,
    activity_level = excluded.activity_level,
    goal = excluded.goal,
    daily_calorie_goal = excluded.daily_calorie_goal,
    daily_water_goal_ml = excluded.daily_water_goal_ml,
    updated_at = now();
`
